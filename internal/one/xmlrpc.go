package one

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/tonetui/tone/internal/errdef"
)

// OpenNebula speaks plain XML-RPC: a methodCall whose params are typed
// values, answered by a methodResponse whose single param is an array of
// [success, body, errcode]. On success the body carries the XML payload of
// a pool or object (or the object id echoed back by an action); on failure
// it carries the error message.

type methodCall struct {
	XMLName xml.Name    `xml:"methodCall"`
	Method  string      `xml:"methodName"`
	Params  []callParam `xml:"params>param"`
}

type callParam struct {
	Value callValue `xml:"value"`
}

// callValue encodes exactly one of its fields.
type callValue struct {
	String *string `xml:"string,omitempty"`
	Int    *int    `xml:"int,omitempty"`
	Bool   *string `xml:"boolean,omitempty"`
}

// encodeCall renders the request document for method. Supported argument
// types are string, int and bool, which covers the whole OpenNebula API
// surface used here.
func encodeCall(method string, args ...any) ([]byte, error) {
	call := methodCall{Method: method}
	for _, arg := range args {
		var v callValue
		switch arg := arg.(type) {
		case string:
			s := arg
			v.String = &s
		case int:
			n := arg
			v.Int = &n
		case bool:
			b := "0"
			if arg {
				b = "1"
			}
			v.Bool = &b
		default:
			return nil, fmt.Errorf("unsupported XML-RPC argument type %T", arg)
		}
		call.Params = append(call.Params, callParam{Value: v})
	}
	body, err := xml.Marshal(call)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

type methodResponse struct {
	XMLName xml.Name   `xml:"methodResponse"`
	Params  []rpcValue `xml:"params>param>value"`
	Fault   *rpcValue  `xml:"fault>value"`
}

// rpcValue decodes any single XML-RPC value. At most one typed field is
// set; an untyped <value> carries its text in Raw.
type rpcValue struct {
	String  *string    `xml:"string"`
	Int     *string    `xml:"int"`
	I4      *string    `xml:"i4"`
	Boolean *string    `xml:"boolean"`
	Double  *string    `xml:"double"`
	Array   *rpcArray  `xml:"array"`
	Struct  *rpcStruct `xml:"struct"`
	Raw     string     `xml:",chardata"`
}

type rpcArray struct {
	Values []rpcValue `xml:"data>value"`
}

type rpcStruct struct {
	Members []rpcMember `xml:"member"`
}

type rpcMember struct {
	Name  string   `xml:"name"`
	Value rpcValue `xml:"value"`
}

// text flattens the value to a string regardless of wire type.
func (v rpcValue) text() string {
	switch {
	case v.String != nil:
		return *v.String
	case v.Int != nil:
		return *v.Int
	case v.I4 != nil:
		return *v.I4
	case v.Boolean != nil:
		return *v.Boolean
	case v.Double != nil:
		return *v.Double
	}
	return strings.TrimSpace(v.Raw)
}

func (v rpcValue) truthy() bool {
	s := v.text()
	return s == "1" || strings.EqualFold(s, "true")
}

// decodeResponse unpacks a methodResponse down to the OpenNebula body
// string, resolving the [success, body, errcode] convention.
func decodeResponse(raw []byte) (string, error) {
	var resp methodResponse
	if err := xml.Unmarshal(raw, &resp); err != nil {
		return "", errdef.Wrap(errdef.CodeParse, err, "decoding XML-RPC response")
	}
	if resp.Fault != nil {
		return "", errdef.New(errdef.CodeProvider, "XML-RPC fault: %s", faultString(*resp.Fault))
	}
	if len(resp.Params) == 0 {
		return "", errdef.New(errdef.CodeParse, "XML-RPC response carries no value")
	}
	value := resp.Params[0]
	if value.Array == nil || len(value.Array.Values) < 2 {
		// Not the usual result array; hand the value back as-is.
		return value.text(), nil
	}
	result := value.Array.Values
	if !result[0].truthy() {
		msg := result[1].text()
		if msg == "" {
			msg = "unknown error"
		}
		return "", errdef.New(errdef.CodeProvider, "OpenNebula API error: %s", msg)
	}
	return result[1].text(), nil
}

func faultString(v rpcValue) string {
	if v.Struct != nil {
		for _, m := range v.Struct.Members {
			if m.Name == "faultString" {
				return m.Value.text()
			}
		}
	}
	return v.text()
}
