package server

import (
	"net/http"
	"strings"
)

// route pairs an HTTP method and a fixed path prefix (everything up to and
// including the trailing slash before the single dynamic segment) with the
// handler to invoke. This service's entire surface is five routes with at
// most one path parameter each, so a linear scan over them is all the
// matching this domain needs.
type route struct {
	method  string
	prefix  string
	pattern string
	handler HandlerFunc
}

func (s *Server) handle(method, prefix, pattern string, h HandlerFunc) {
	s.routes = append(s.routes, route{method: method, prefix: prefix, pattern: pattern, handler: h})
}

func (s *Server) match(method, path string) (route, string, bool) {
	for _, r := range s.routes {
		if r.method != method {
			continue
		}
		if r.prefix == path {
			return r, "", true
		}
		if strings.HasSuffix(r.prefix, "/") && strings.HasPrefix(path, r.prefix) {
			param := path[len(r.prefix):]
			if param != "" && !strings.Contains(param, "/") {
				return r, param, true
			}
		}
	}
	return route{}, "", false
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r, param, ok := s.match(req.Method, req.URL.Path)
	if !ok {
		http.NotFound(w, req)
		return
	}

	c := &Context{
		w:       newRecorder(w),
		req:     req,
		pattern: r.pattern,
		param:   param,
	}
	chain(r.handler, s.mws)(c)
}
