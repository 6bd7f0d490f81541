package httpapi

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/gin-gonic/gin"

	"github.com/hexlayer/stegocrypt/internal/carrier"
	"github.com/hexlayer/stegocrypt/stegocore"
)

func parseSuite(s string) (stegocore.Suite, error) {
	suite := stegocore.Suite(s)
	if s == "" {
		suite = stegocore.SuiteAscon128
	}
	if !suite.Valid() {
		return "", fmt.Errorf("%w: unknown cipher suite %q", stegocore.ErrUnsupportedFormat, s)
	}
	return suite, nil
}

func parseMode(s string) stegocore.Mode {
	if carrier.Mode(s) == carrier.ModeAdaptive {
		return stegocore.ModeAdaptive
	}
	return stegocore.ModeSequential
}

// EmbedHandler encrypts the uploaded payload under passphrase, embeds
// the ciphertext into the uploaded cover, and returns the resulting
// stego file with its key file carried as a base64-encoded JSON header,
// since unlike the teacher's single-PSNR-header audio case, every
// carrier family here needs a structured companion record (nonce, salt,
// suite, mode) to ever be extracted again.
//
//	@Summary		Embed a payload into a cover file
//	@Description	Encrypts the uploaded payload and hides it inside the uploaded cover (PNG, BMP, JPEG, or WAV), returning the stego file with its key file in the X-Key-File response header.
//	@Tags			Steganography
//	@Accept			multipart/form-data
//	@Produce		application/octet-stream
//	@Param			cover		formData	file	true	"Cover file (png, bmp, jpg/jpeg, or wav)"
//	@Param			payload		formData	file	true	"Payload file to hide"
//	@Param			passphrase	formData	string	true	"Passphrase used to derive the encryption/embedding key"
//	@Param			cipher		formData	string	false	"Cipher suite: Ascon-128, ChaCha20-Poly1305, or AES-256-GCM"
//	@Param			mode		formData	string	false	"Embedding mode: sequential or adaptive"
//	@Success		200	{file}	binary	"Stego file with embedded, encrypted payload"
//	@Header			200	{string}	X-Key-File	"Base64-encoded JSON key file needed to extract"
//	@Failure		400	{object}	ErrorResponse
//	@Router			/embed [post]
func (h *Handlers) EmbedHandler(c *gin.Context) {
	start := time.Now()

	coverHeader, err := c.FormFile("cover")
	if err != nil {
		sendError(c, http.StatusBadRequest, "MISSING_FILE", "cover file not provided")
		return
	}
	payloadHeader, err := c.FormFile("payload")
	if err != nil {
		sendError(c, http.StatusBadRequest, "MISSING_FILE", "payload file not provided")
		return
	}
	passphrase := c.PostForm("passphrase")
	if passphrase == "" {
		sendError(c, http.StatusBadRequest, "MISSING_PASSPHRASE", "passphrase is required")
		return
	}
	suite, err := parseSuite(c.PostForm("cipher"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_CIPHER", err.Error())
		return
	}
	mode := parseMode(c.PostForm("mode"))

	dir, err := os.MkdirTemp("", "stegocrypt-embed-*")
	if err != nil {
		sendError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to allocate workspace")
		return
	}
	defer os.RemoveAll(dir)

	coverPath, err := saveUpload(coverHeader, dir)
	if err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_UPLOAD", err.Error())
		return
	}
	payloadFile, err := payloadHeader.Open()
	if err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_UPLOAD", err.Error())
		return
	}
	payload, err := io.ReadAll(payloadFile)
	payloadFile.Close()
	if err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_UPLOAD", err.Error())
		return
	}

	sealed, err := stegocore.Encrypt(payload, passphrase, suite)
	if err != nil {
		sendStegoError(c, "embed.encrypt", err)
		return
	}
	key, err := stegocore.DeriveKey(passphrase, sealed.Salt, suite)
	if err != nil {
		sendStegoError(c, "embed.derive_key", err)
		return
	}

	outputPath := outputPathFor(dir, filepath.Ext(coverHeader.Filename))
	if err := stegocore.Embed(coverPath, sealed.Ciphertext, outputPath, key, mode); err != nil {
		sendStegoError(c, "embed", err)
		return
	}

	kf := &stegocore.KeyFile{
		Cipher:   suite,
		StegMode: mode,
		Nonce:    sealed.Nonce,
		Salt:     sealed.Salt,
		InfoType: infoTypeForExt(strings.ToLower(filepath.Ext(coverHeader.Filename))),
	}
	kfJSON, err := json.Marshal(kf)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to encode key file")
		return
	}

	stegoBytes, err := os.ReadFile(outputPath)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to read stego output")
		return
	}

	outName := "stego" + filepath.Ext(coverHeader.Filename)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", outName))
	c.Header("X-Key-File", base64.StdEncoding.EncodeToString(kfJSON))
	c.Header("X-Secret-Size", strconv.Itoa(len(payload)))
	c.Header("X-Processing-Time", strconv.FormatInt(time.Since(start).Milliseconds(), 10))
	c.Data(http.StatusOK, "application/octet-stream", stegoBytes)
}
