package controller

import (
	"bytes"
	_ "embed"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed root.md
var rootMarkdown []byte

type InfoController interface {
	Info(c echo.Context) error
	Health(c echo.Context) error
}

type infoController struct {
	page []byte
}

func newInfoController() InfoController {
	page, err := renderMarkdown(rootMarkdown)
	if err != nil {
		logrus.Panic(err)
	}
	return &infoController{
		page: page,
	}
}

func renderMarkdown(source []byte) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	var buf bytes.Buffer
	if err := md.Convert(source, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Info handles GET / with the rendered help page.
func (i *infoController) Info(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, i.page)
}

func (i *infoController) Health(c echo.Context) error {
	return respondOK(c, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
