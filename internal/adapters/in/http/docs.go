package http

import (
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

var registerDocOnce sync.Once

// openAPIDoc hands the embedded document to swag, which echo-swagger reads
// for /swagger/doc.json.
type openAPIDoc struct {
	doc *openapi3.T
}

func (d openAPIDoc) ReadDoc() string {
	b, err := d.doc.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(b)
}

func registerDocs(e *echo.Echo, doc *openapi3.T) {
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{doc: doc})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
