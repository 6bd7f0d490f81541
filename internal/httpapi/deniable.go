package httpapi

import (
	"crypto/rand"
	"encoding/base64"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hexlayer/stegocrypt/stegocore"
)

// EmbedDeniableHandler embeds two independently encrypted payloads into
// disjoint halves of a raster cover's adaptive-eligible channels. The
// response is JSON, not a binary body with metadata headers like
// /embed: two key files and one stego file can't be carried across the
// same two-header scheme /embed uses without the client having to guess
// which header belongs to which passphrase, so every field is named
// explicitly in the JSON envelope instead.
//
//	@Summary		Embed two payloads deniably into a raster cover
//	@Description	Encrypts real_payload under real_passphrase and decoy_payload under decoy_passphrase, then embeds both into disjoint halves of the cover's adaptive-eligible channels.
//	@Tags			Steganography
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			cover			formData	file	true	"Lossless raster cover (png or bmp)"
//	@Param			real_payload	formData	file	true	"Real payload"
//	@Param			decoy_payload	formData	file	true	"Decoy payload"
//	@Param			real_passphrase		formData	string	true	"Passphrase for the real payload"
//	@Param			decoy_passphrase	formData	string	true	"Passphrase for the decoy payload"
//	@Param			cipher			formData	string	false	"Cipher suite shared by both payloads"
//	@Success		200	{object}	DeniableEmbedResponse
//	@Failure		400	{object}	ErrorResponse
//	@Router			/embed-deniable [post]
func (h *Handlers) EmbedDeniableHandler(c *gin.Context) {
	coverHeader, err := c.FormFile("cover")
	if err != nil {
		sendError(c, http.StatusBadRequest, "MISSING_FILE", "cover file not provided")
		return
	}
	realHeader, err := c.FormFile("real_payload")
	if err != nil {
		sendError(c, http.StatusBadRequest, "MISSING_FILE", "real_payload file not provided")
		return
	}
	decoyHeader, err := c.FormFile("decoy_payload")
	if err != nil {
		sendError(c, http.StatusBadRequest, "MISSING_FILE", "decoy_payload file not provided")
		return
	}
	realPass := c.PostForm("real_passphrase")
	decoyPass := c.PostForm("decoy_passphrase")
	if realPass == "" || decoyPass == "" {
		sendError(c, http.StatusBadRequest, "MISSING_PASSPHRASE", "real_passphrase and decoy_passphrase are both required")
		return
	}
	suite, err := parseSuite(c.PostForm("cipher"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_CIPHER", err.Error())
		return
	}

	dir, err := os.MkdirTemp("", "stegocrypt-deniable-*")
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
	realPayload, err := readUpload(realHeader)
	if err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_UPLOAD", err.Error())
		return
	}
	decoyPayload, err := readUpload(decoyHeader)
	if err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_UPLOAD", err.Error())
		return
	}

	partitionSeed := make([]byte, stegocore.PartitionSeedSize)
	if _, err := rand.Read(partitionSeed); err != nil {
		sendError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to generate partition seed")
		return
	}

	sealedReal, err := stegocore.Encrypt(realPayload, realPass, suite)
	if err != nil {
		sendStegoError(c, "embed_deniable.encrypt_real", err)
		return
	}
	realKey, err := stegocore.DeriveKey(realPass, sealedReal.Salt, suite)
	if err != nil {
		sendStegoError(c, "embed_deniable.derive_real", err)
		return
	}
	sealedDecoy, err := stegocore.Encrypt(decoyPayload, decoyPass, suite)
	if err != nil {
		sendStegoError(c, "embed_deniable.encrypt_decoy", err)
		return
	}
	decoyKey, err := stegocore.DeriveKey(decoyPass, sealedDecoy.Salt, suite)
	if err != nil {
		sendStegoError(c, "embed_deniable.derive_decoy", err)
		return
	}

	ext := strings.ToLower(filepath.Ext(coverHeader.Filename))
	outputPath := outputPathFor(dir, ext)
	if err := stegocore.EmbedDeniable(coverPath, sealedReal.Ciphertext, sealedDecoy.Ciphertext, outputPath, realKey, decoyKey, partitionSeed); err != nil {
		sendStegoError(c, "embed_deniable", err)
		return
	}

	stegoBytes, err := os.ReadFile(outputPath)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to read stego output")
		return
	}

	infoType := infoTypeForExt(ext)
	c.JSON(http.StatusOK, DeniableEmbedResponse{
		StegoBase64: base64.StdEncoding.EncodeToString(stegoBytes),
		Filename:    "stego" + ext,
		RealKeyFile: &stegocore.KeyFile{
			Cipher: suite, StegMode: stegocore.ModeAdaptive, Deniable: true,
			Nonce: sealedReal.Nonce, Salt: sealedReal.Salt, InfoType: infoType,
			PartitionSeed: partitionSeed, PartitionHalf: 0,
		},
		DecoyKeyFile: &stegocore.KeyFile{
			Cipher: suite, StegMode: stegocore.ModeAdaptive, Deniable: true,
			Nonce: sealedDecoy.Nonce, Salt: sealedDecoy.Salt, InfoType: infoType,
			PartitionSeed: partitionSeed, PartitionHalf: 1,
		},
	})
}

// ExtractDeniableHandler recovers and decrypts whichever half of a
// deniable stego file the supplied key file and passphrase address.
//
//	@Summary		Extract one half of a deniable embed
//	@Description	Recovers and decrypts the payload addressed by the supplied key file's partition half.
//	@Tags			Steganography
//	@Accept			multipart/form-data
//	@Produce		application/octet-stream
//	@Param			stego		formData	file	true	"Deniable stego file"
//	@Param			key_file	formData	string	true	"Base64-encoded JSON key file (real or decoy) returned by /embed-deniable"
//	@Param			passphrase	formData	string	true	"Passphrase matching the supplied key file's half"
//	@Success		200	{file}	binary	"Recovered payload"
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/extract-deniable [post]
func (h *Handlers) ExtractDeniableHandler(c *gin.Context) {
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
		sendStegoError(c, "extract_deniable.key_file", err)
		return
	}
	if !kf.Deniable {
		sendError(c, http.StatusBadRequest, "MALFORMED_KEY_FILE", "key file is not a deniable-mode key file")
		return
	}

	dir, err := os.MkdirTemp("", "stegocrypt-extract-deniable-*")
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
		sendStegoError(c, "extract_deniable.derive_key", err)
		return
	}
	ciphertext, err := stegocore.ExtractDeniable(stegoPath, key, kf.PartitionSeed, kf.PartitionHalf)
	if err != nil {
		sendStegoError(c, "extract_deniable", err)
		return
	}

	sealed := &stegocore.Sealed{Ciphertext: ciphertext, Nonce: kf.Nonce, Salt: kf.Salt, Suite: kf.Cipher}
	plaintext, err := stegocore.Decrypt(sealed, passphrase)
	if err != nil {
		sendStegoError(c, "extract_deniable.decrypt", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="payload.bin"`)
	c.Data(http.StatusOK, "application/octet-stream", plaintext)
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
