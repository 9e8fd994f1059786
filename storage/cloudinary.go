package storage

import (
	"crypto/sha1"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"
)

// Cloudinary is the blob-store collaborator: it holds property images
// and nothing else. Only the HTTP layer talks to it; the entity store
// never does. Configured via CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY,
// CLOUDINARY_API_SECRET and optional CLOUDINARY_FOLDER.
type Cloudinary struct {
	cloudName string
	apiKey    string
	apiSecret string
	folder    string
	client    *http.Client
}

var ErrBlobStoreDisabled = errors.New("blob store not configured")

func NewCloudinary() *Cloudinary {
	return &Cloudinary{
		cloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		apiKey:    os.Getenv("CLOUDINARY_API_KEY"),
		apiSecret: os.Getenv("CLOUDINARY_API_SECRET"),
		folder:    os.Getenv("CLOUDINARY_FOLDER"),
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Cloudinary) enabled() bool {
	return c != nil && c.cloudName != "" && c.apiKey != "" && c.apiSecret != ""
}

// UploadBase64Image pushes a base64 data URI (or bare payload) as a
// signed upload and returns the hosted URL.
func (c *Cloudinary) UploadBase64Image(base64Src, publicID string) (string, error) {
	if !c.enabled() {
		return "", ErrBlobStoreDisabled
	}
	if base64Src == "" {
		return "", errors.New("empty image payload")
	}

	payload := base64Src
	if i := strings.Index(base64Src, ","); i != -1 {
		payload = base64Src[i+1:]
	}

	if c.folder != "" {
		publicID = c.folder + "/" + publicID
	}

	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	form := url.Values{}
	form.Add("file", "data:image/jpeg;base64,"+payload)
	form.Add("api_key", c.apiKey)
	form.Add("public_id", publicID)
	form.Add("timestamp", timestamp)
	form.Add("signature", c.sign("public_id="+publicID+"&timestamp="+timestamp))

	endpoint := "https://api.cloudinary.com/v1_1/" + c.cloudName + "/image/upload"
	body, err := c.post(endpoint, form)
	if err != nil {
		return "", err
	}

	var result struct {
		SecureURL string `json:"secure_url"`
		URL       string `json:"url"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}
	if result.SecureURL != "" {
		return result.SecureURL, nil
	}
	if result.URL == "" {
		return "", errors.New("upload failed: no url in response")
	}
	return result.URL, nil
}

// DeleteImageByURL destroys the asset behind a previously returned URL.
func (c *Cloudinary) DeleteImageByURL(imageURL string) error {
	if !c.enabled() {
		return ErrBlobStoreDisabled
	}
	publicID := publicIDFromURL(imageURL)
	if publicID == "" {
		return errors.New("cannot derive public id from url")
	}

	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	form := url.Values{}
	form.Add("public_id", publicID)
	form.Add("api_key", c.apiKey)
	form.Add("timestamp", timestamp)
	form.Add("signature", c.sign("public_id="+publicID+"&timestamp="+timestamp))

	endpoint := "https://api.cloudinary.com/v1_1/" + c.cloudName + "/image/destroy"
	_, err := c.post(endpoint, form)
	return err
}

func (c *Cloudinary) sign(params string) string {
	return fmt.Sprintf("%x", sha1.Sum([]byte(params+c.apiSecret)))
}

func (c *Cloudinary) post(endpoint string, form url.Values) ([]byte, error) {
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("blob store returned %d: %s", res.StatusCode, body)
	}
	return body, nil
}

// publicIDFromURL extracts "<folder>/<name>" from a delivery URL like
// https://res.cloudinary.com/demo/image/upload/v123/folder/name.jpg.
func publicIDFromURL(imageURL string) string {
	parsed, err := url.Parse(imageURL)
	if err != nil {
		return ""
	}
	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	for i, part := range parts {
		if part == "upload" && i+1 < len(parts) {
			rest := parts[i+1:]
			if len(rest) > 0 && strings.HasPrefix(rest[0], "v") {
				rest = rest[1:]
			}
			joined := strings.Join(rest, "/")
			return strings.TrimSuffix(joined, path.Ext(joined))
		}
	}
	return ""
}
