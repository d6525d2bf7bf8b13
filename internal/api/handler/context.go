package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Virag-Koradiya/ElevateU/internal/api/middleware"
	"github.com/Virag-Koradiya/ElevateU/internal/core/ports"
)

// subjectID extracts the authenticated user id injected by the Auth
// middleware. Its absence means the route is misconfigured (guard not
// mounted); reject rather than proceed unauthenticated.
func subjectID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.CtxUserID).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	return id, nil
}

// formFile reads an optional multipart file field into a FileUpload.
// A missing field yields (nil, nil).
func formFile(c echo.Context, field string) (*ports.FileUpload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile || err == echo.ErrNotFound {
			return nil, nil
		}
		// multipart parse errors on requests without a body also mean
		// "no file" here; the schemas validate the rest of the form.
		return nil, nil
	}
	return readFileHeader(fh)
}

func readFileHeader(fh *multipart.FileHeader) (*ports.FileUpload, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	return &ports.FileUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Data:        data,
	}, nil
}
