package models

// Response is the uniform envelope for every JSON body the API produces.
// ResultCode 0 means success; any positive value is an application error code.
type Response struct {
	ResultCode    int         `json:"resultCode"`
	ResultMessage string      `json:"resultMessage"`
	Data          interface{} `json:"data"`
}

func SuccessResponse(message string, data interface{}) Response {
	return Response{ResultCode: 0, ResultMessage: message, Data: data}
}

func ErrorResponse(code int, message string) Response {
	return Response{ResultCode: code, ResultMessage: message, Data: nil}
}
