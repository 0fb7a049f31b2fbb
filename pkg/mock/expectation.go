package mock

import (
	"testing"

	"github.com/codedx/twistlock2codedx/pkg/ext"
)

// Expectation represents an expectation of a method being called and its return values.
type Expectation struct {
	Method     string
	Args       []interface{}
	ReturnArgs []interface{}
	Times      int
}

// ApplyExpectations applies the specified expectations on a given mock.
func ApplyExpectations(t *testing.T, mock interface{}, expectations ...*Expectation) {
	t.Helper()
	if len(expectations) == 0 || expectations[0] == nil {
		return
	}
	switch v := mock.(type) {
	case *Transformer:
		for _, e := range expectations {
			call := v.On(e.Method, e.Args...).Return(e.ReturnArgs...)
			if e.Times > 0 {
				call.Times(e.Times)
			}
		}
	case *ext.MockAmbassador:
		for _, e := range expectations {
			call := v.On(e.Method, e.Args...).Return(e.ReturnArgs...)
			if e.Times > 0 {
				call.Times(e.Times)
			}
		}
	default:
		t.Fatalf("Unrecognized mock type: %T!", v)
	}
}
