package transition

import "fmt"

// MissingArgumentError reports a required path parameter with no value in
// the caller's argument map.
type MissingArgumentError struct {
	Route string
	Param string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("route %q: missing argument for path parameter %q", e.Route, e.Param)
}

// UnexpectedArgumentError reports an argument that matches no declared
// parameter of the route. Only raised in strict mode; lenient resolvers
// drop the argument instead.
type UnexpectedArgumentError struct {
	Route string
	Param string
}

func (e *UnexpectedArgumentError) Error() string {
	return fmt.Sprintf("route %q: unexpected argument %q", e.Route, e.Param)
}
