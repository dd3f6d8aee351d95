package reflect

import (
	"reflect"
	"sort"
)

var errorType = reflect.TypeFor[error]()

// Methods inspects the type of the given value 'v' using reflection and returns the
// sorted names of all methods defined on its type. Only exported methods are visible
// to reflection.
func Methods(v any) []string {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil
	}

	methodNames := make([]string, 0, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		methodNames = append(methodNames, t.Method(i).Name)
	}

	sort.Strings(methodNames)

	return methodNames
}

// InputParamCounts returns the number of input parameters of the specified method
// of 'v', or -1 if the method does not exist.
func InputParamCounts(v any, method string) int {
	methodVal := reflect.ValueOf(v).MethodByName(method)
	if !methodVal.IsValid() {
		return -1
	}

	return methodVal.Type().NumIn()
}

// MethodReturnsError checks if the last return value of the specified method on value
// 'v' is of type error.
func MethodReturnsError(v any, method string) bool {
	methodVal := reflect.ValueOf(v).MethodByName(method)
	if !methodVal.IsValid() {
		return false
	}

	methodType := methodVal.Type()
	numOut := methodType.NumOut()
	if numOut == 0 {
		return false
	}

	return methodType.Out(numOut-1) == errorType
}
