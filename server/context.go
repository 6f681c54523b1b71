package server

import "net/http"

// Context carries the state of a single request through the middleware
// chain and into its handler. Its lifetime is limited to the handler call;
// it carries a single path parameter instead of a generic params slice
// since every route here has at most one.
type Context struct {
	w       *recorder
	req     *http.Request
	pattern string
	param   string
}

// Request returns the current *http.Request.
func (c *Context) Request() *http.Request { return c.req }

// Writer returns the ResponseWriter for the current request.
func (c *Context) Writer() ResponseWriter { return c.w }

// Method returns the request method.
func (c *Context) Method() string { return c.req.Method }

// Pattern returns the registered route pattern matched for this request.
func (c *Context) Pattern() string { return c.pattern }

// Param returns the route's single path parameter (a player name or a
// rollback delta), or the empty string for routes that take none.
func (c *Context) Param() string { return c.param }
