package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/abiy5791/RobelStudio-sub001/albums"
)

// File is one binary upload: a name and its content.
type File struct {
	Name   string
	Reader io.Reader
}

// progressReader reports percent completion of a fixed-size body as the
// transport consumes it. Percentages are integers and strictly
// increasing; the callback fires at most 100 times.
type progressReader struct {
	r          io.Reader
	total      int64
	read       int64
	lastPct    int
	onProgress func(int)
}

func (pr *progressReader) Read(p []byte) (int, error) {
	n, err := pr.r.Read(p)
	if n > 0 && pr.total > 0 && pr.onProgress != nil {
		pr.read += int64(n)
		pct := int(pr.read * 100 / pr.total)
		if pct > 100 {
			pct = 100
		}
		if pct > pr.lastPct {
			pr.lastPct = pct
			pr.onProgress(pct)
		}
	}
	return n, err
}

// newProgressRequest builds a JSON request whose body reports upload
// progress through onProgress.
func (c *Client) newProgressRequest(ctx context.Context, method, path string, body any, onProgress func(int)) (*http.Request, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, &UploadError{Message: "Update failed", Err: err}
	}

	pr := &progressReader{
		r:          bytes.NewReader(jsonBody),
		total:      int64(len(jsonBody)),
		onProgress: onProgress,
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, pr)
	if err != nil {
		return nil, &UploadError{Message: "Update failed", Err: err}
	}
	req.ContentLength = int64(len(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	c.setCommonHeaders(req)
	return req, nil
}

// UploadImages posts the files as one multipart request under the "files"
// field and returns the stored image descriptors. Progress is reported as
// a monotone integer percentage of the request body.
func (c *Client) UploadImages(ctx context.Context, files []File, onProgress func(int)) ([]albums.UploadedImage, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, f := range files {
		part, err := mw.CreateFormFile("files", f.Name)
		if err != nil {
			return nil, &UploadError{Message: "Upload failed", Err: err}
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return nil, &UploadError{Message: "Upload failed", Err: err}
		}
	}
	if err := mw.Close(); err != nil {
		return nil, &UploadError{Message: "Upload failed", Err: err}
	}

	total := int64(buf.Len())
	body := &progressReader{r: &buf, total: total, onProgress: onProgress}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/uploads/images/", body)
	if err != nil {
		return nil, &UploadError{Message: "Upload failed", Err: err}
	}
	req.ContentLength = total
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.setCommonHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UploadError{Message: "Upload failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UploadError{Message: fmt.Sprintf("Upload failed (%d)", resp.StatusCode)}
	}

	var out struct {
		Images []albums.UploadedImage `json:"images"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &UploadError{Message: "Failed to parse response", Err: err}
	}
	return out.Images, nil
}
