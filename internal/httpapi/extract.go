package httpapi

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/gin-gonic/gin"

	"github.com/hexlayer/stegocrypt/stegocore"
)

// decodeKeyFileField reads the X-Key-File-shaped base64 JSON blob
// carried in the "key_file" form field (set by a client that previously
// called /embed) into a stegocore.KeyFile.
func decodeKeyFileField(c *gin.Context) (*stegocore.KeyFile, error) {
	encoded := c.PostForm("key_file")
	if encoded == "" {
		return nil, fmt.Errorf("%w: key_file form field is required", stegocore.ErrMalformedKeyFile)
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: key_file is not valid base64: %w", stegocore.ErrMalformedKeyFile, err)
	}
	var kf stegocore.KeyFile
	if err := json.Unmarshal(raw, &kf); err != nil {
		return nil, fmt.Errorf("%w: key_file is not valid JSON: %w", stegocore.ErrMalformedKeyFile, err)
	}
	return &kf, nil
}

// ExtractHandler recovers and decrypts the payload previously embedded
// in the uploaded stego file, given the key file returned by /embed and
// the original passphrase.
//
//	@Summary		Extract a payload from a stego file
//	@Description	Recovers the embedded ciphertext using the supplied key file, then decrypts it with passphrase.
//	@Tags			Steganography
//	@Accept			multipart/form-data
//	@Produce		application/octet-stream
//	@Param			stego		formData	file	true	"Stego file with an embedded payload"
//	@Param			key_file	formData	string	true	"Base64-encoded JSON key file returned by /embed"
//	@Param			passphrase	formData	string	true	"Passphrase used at embed time"
//	@Success		200	{file}	binary	"Recovered payload"
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/extract [post]
func (h *Handlers) ExtractHandler(c *gin.Context) {
	start := time.Now()

	stegoHeader, err := c.FormFile("stego")
	if err != nil {
		sendError(c, http.StatusBadRequest, "MISSING_FILE", "stego file not provided")
		return
	}
	passphrase := c.PostForm("passphrase")
	if passphrase == "" {
		sendError(c, http.StatusBadRequest, "MISSING_PASSPHRASE", "passphrase is required")
		return
	}
	kf, err := decodeKeyFileField(c)
	if err != nil {
		sendStegoError(c, "extract.key_file", err)
		return
	}

	dir, err := os.MkdirTemp("", "stegocrypt-extract-*")
	if err != nil {
		sendError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to allocate workspace")
		return
	}
	defer os.RemoveAll(dir)

	stegoPath, err := saveUpload(stegoHeader, dir)
	if err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_UPLOAD", err.Error())
		return
	}

	key, err := stegocore.DeriveKey(passphrase, kf.Salt, kf.Cipher)
	if err != nil {
		sendStegoError(c, "extract.derive_key", err)
		return
	}

	ciphertext, err := stegocore.Extract(stegoPath, key, kf.StegMode)
	if err != nil {
		sendStegoError(c, "extract", err)
		return
	}

	sealed := &stegocore.Sealed{Ciphertext: ciphertext, Nonce: kf.Nonce, Salt: kf.Salt, Suite: kf.Cipher}
	plaintext, err := stegocore.Decrypt(sealed, passphrase)
	if err != nil {
		sendStegoError(c, "extract.decrypt", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="payload.bin"`)
	c.Header("X-Secret-Size", strconv.Itoa(len(plaintext)))
	c.Header("X-Processing-Time", strconv.FormatInt(time.Since(start).Milliseconds(), 10))
	c.Data(http.StatusOK, "application/octet-stream", plaintext)
}
