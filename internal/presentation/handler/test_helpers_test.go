package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"pfp3/internal/domain/entity"
	"pfp3/internal/domain/model"
	"pfp3/internal/presentation"
)

type stubUploader struct {
	result entity.UploadResult
	err    error

	gotFileName  string
	gotMediaType string
	gotContent   []byte
}

func (u *stubUploader) Upload(_ context.Context, _ *model.User, body io.Reader,
	fileName, mediaType string,
) (entity.UploadResult, error) {
	u.gotFileName = fileName
	u.gotMediaType = mediaType
	u.gotContent, _ = io.ReadAll(body)

	return u.result, u.err
}

type stubGetter struct {
	avatar *entity.Avatar
	err    error
}

func (g *stubGetter) Get(context.Context, string) (*entity.Avatar, error) {
	return g.avatar, g.err
}

// multipartRequest builds a POST with a single "file" part carrying the given
// declared media type and file name.
func multipartRequest(t *testing.T, fileName, mediaType string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, presentation.FileField, fileName))
	header.Set(echo.HeaderContentType, mediaType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/users/me/avatar", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

func uploadContext(req *http.Request, user *model.User) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(presentation.KeyUser, user)
	}

	return c, rec
}
