package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary pointers into random readable names. It flagrantly
// leaks memory but generates the names lazily, so it's not a problem unless
// you're actually using it. Scenes use it to label shapes that were loaded
// without a name, which makes overlap reports much easier to read than
// "polygon #7".

var (
	memo   = make(map[interface{}]string)
	taken  = make(map[string]struct{})
	memoMu sync.Mutex
)

func init() {
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to the
	// same thing between runs.
	petname.NonDeterministicMode()
}

// Name the object. The same object always gets the same name within a run, and
// no two objects share one.
func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	var r string
	for attempt := 0; ; attempt++ {
		r = fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
		if attempt > 0 {
			r = fmt.Sprintf("%s%d", r, attempt)
		}
		if _, clash := taken[r]; !clash {
			break
		}
	}
	memo[obj] = r
	taken[r] = struct{}{}
	return r
}

func title(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
