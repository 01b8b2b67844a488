package errors

import "net/http"

var (
	ClientRequest  = &Error{synopsis: "client request error", httpStatus: http.StatusBadRequest}
	Configuration  = &Error{synopsis: "configuration error", httpStatus: http.StatusInternalServerError}
	RouteNotFound  = &Error{synopsis: "route not found error", httpStatus: http.StatusNotFound}
	Server         = &Error{synopsis: "internal server error", httpStatus: http.StatusInternalServerError}
	ServerShutdown = &Error{synopsis: "server shutdown error", httpStatus: http.StatusInternalServerError}
	ServerTimeout  = &Error{synopsis: "server timeout error", httpStatus: http.StatusGatewayTimeout}
)
