package webapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vehicleq/vehicleq/pkg/dto"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 10, G: 120, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// uploadRequest builds the multipart request the browser client sends: the
// metadata fields plus one "image" file part with its own content type.
func uploadRequest(
	t *testing.T,
	fields map[string]string,
	contentType string,
	data []byte,
) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, "car.png"))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/upload/", &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return req
}

func uploadFields() map[string]string {
	return map[string]string{
		"user_id": "1",
		"number":  "KA01AB1234",
		"owner":   "Alice",
	}
}

func TestUpload_Success(t *testing.T) {
	app, _, vehicleRepo, _, _ := SetupTestApp(t)
	vehicleRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *dto.VehicleCreate) bool {
		_, format, err := image.Decode(bytes.NewReader(c.Image))
		return err == nil && format == "jpeg" && c.Number == "KA01AB1234"
	})).Return(&dto.VehicleRead{
		ID: 10, Number: "KA01AB1234", Owner: "Alice",
		Timestamp: "2026-08-29 12:00:00", UserID: 1,
	}, nil)

	resp, err := app.Test(uploadRequest(t, uploadFields(), "image/png", pngBytes(t, 100, 100)))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got uploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, int64(10), got.ID)
	assert.Equal(t, "KA01AB1234", got.Number)
	assert.NotEmpty(t, got.Timestamp)
}

func TestUpload_NonImageContentType(t *testing.T) {
	app, _, vehicleRepo, _, _ := SetupTestApp(t)

	resp, err := app.Test(uploadRequest(t, uploadFields(), "text/plain", []byte("hello")))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	vehicleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpload_UndecodableImage(t *testing.T) {
	app, _, vehicleRepo, _, _ := SetupTestApp(t)

	resp, err := app.Test(uploadRequest(t, uploadFields(), "image/png", []byte("garbage")))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	vehicleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpload_MissingFile(t *testing.T) {
	app, _, _, _, _ := SetupTestApp(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range uploadFields() {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	req := httptest.NewRequest("POST", "/upload/", &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListVehicles(t *testing.T) {
	app, _, vehicleRepo, _, _ := SetupTestApp(t)
	vehicleRepo.On("List", mock.Anything).Return([]*dto.VehicleRead{
		{ID: 2, Number: "MH12CD5678", Timestamp: "2026-08-29 12:00:05"},
		{ID: 1, Number: "KA01AB1234", Timestamp: "2026-08-29 12:00:01"},
	}, nil)

	resp, err := app.Test(formRequest("GET", "/vehicles/", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got []dto.VehicleRead
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestListVehiclesByUser(t *testing.T) {
	app, _, vehicleRepo, _, _ := SetupTestApp(t)
	vehicleRepo.On("ListByUser", mock.Anything, int64(7)).
		Return([]*dto.VehicleRead{}, nil)

	resp, err := app.Test(formRequest("GET", "/vehicles/7", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(bytes.TrimSpace(body)))
}

func TestVehicleImage_Success(t *testing.T) {
	app, _, vehicleRepo, _, _ := SetupTestApp(t)
	vehicleRepo.On("Image", mock.Anything, int64(3)).
		Return([]byte{0xFF, 0xD8, 0xFF}, nil)

	resp, err := app.Test(formRequest("GET", "/image/3", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/jpeg", resp.Header.Get(fiber.HeaderContentType))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF}, body)
}

func TestVehicleImage_NotFound(t *testing.T) {
	app, _, vehicleRepo, _, _ := SetupTestApp(t)
	vehicleRepo.On("Image", mock.Anything, int64(404)).Return(nil, nil)

	resp, err := app.Test(formRequest("GET", "/image/404", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteVehicle_Success(t *testing.T) {
	app, _, vehicleRepo, _, _ := SetupTestApp(t)
	vehicleRepo.On("Get", mock.Anything, int64(5)).
		Return(&dto.VehicleRead{ID: 5, HasImage: true}, nil)
	vehicleRepo.On("Delete", mock.Anything, int64(5)).Return(nil)

	resp, err := app.Test(formRequest("DELETE", "/vehicle/5", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got struct {
		Message      string `json:"message"`
		ImageRemoved bool   `json:"image_removed"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.True(t, got.ImageRemoved)
}

func TestDeleteVehicle_NotFound(t *testing.T) {
	app, _, vehicleRepo, _, _ := SetupTestApp(t)
	vehicleRepo.On("Get", mock.Anything, int64(99)).Return(nil, nil)

	resp, err := app.Test(formRequest("DELETE", "/vehicle/99", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// End-to-end shape check: register, upload a 100x100 PNG, list, then fetch
// the image back as JPEG bytes.
func TestRegisterUploadListFetch(t *testing.T) {
	app, userRepo, vehicleRepo, _, _ := SetupTestApp(t)

	userRepo.On("ExistsByUsernameOrEmail", mock.Anything, "alice", "a@x.com").
		Return(false, nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(aliceRead(), nil)

	var storedImage []byte
	vehicleRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			storedImage = args.Get(1).(*dto.VehicleCreate).Image
		}).
		Return(&dto.VehicleRead{
			ID: 1, Number: "KA01AB1234", Owner: "Alice",
			Timestamp: "2026-08-29 12:00:00", UserID: 1, HasImage: true,
		}, nil)
	vehicleRepo.On("List", mock.Anything).Return([]*dto.VehicleRead{
		{ID: 1, Number: "KA01AB1234", Owner: "Alice",
			Timestamp: "2026-08-29 12:00:00", UserID: 1, HasImage: true},
	}, nil)
	resp, err := app.Test(formRequest("POST", "/register/", registerForm()))
	require.NoError(t, err)
	resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(uploadRequest(t, uploadFields(), "image/png", pngBytes(t, 100, 100)))
	require.NoError(t, err)
	resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(formRequest("GET", "/vehicles/", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	var list []dto.VehicleRead
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "KA01AB1234", list[0].Number)

	// The bytes the handler persisted decode as JPEG.
	_, format, err := image.Decode(bytes.NewReader(storedImage))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}
