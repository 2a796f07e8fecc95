/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/suparena/shopstore/handlers"
)

// maxUploadBytes caps a multipart request body, files included.
const maxUploadBytes = 32 << 20

// decodeRequest fills dst from the request. Plain requests carry JSON in
// the body; multipart requests carry it in the "payload" form field, with
// files in their own fields.
func decodeRequest(r *http.Request, dst interface{}) error {
	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return err
		}
		payload := r.FormValue("payload")
		if payload == "" {
			return nil
		}
		return json.Unmarshal([]byte(payload), dst)
	}
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	return json.NewDecoder(r.Body).Decode(dst)
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// fileUpload extracts one uploaded file, nil when the field is absent.
func fileUpload(r *http.Request, field string) *handlers.Upload {
	if !isMultipart(r) || r.MultipartForm == nil {
		return nil
	}
	files := r.MultipartForm.File[field]
	if len(files) == 0 {
		return nil
	}
	f, err := files[0].Open()
	if err != nil {
		return nil
	}
	return &handlers.Upload{
		Filename:    files[0].Filename,
		ContentType: files[0].Header.Get("Content-Type"),
		Body:        f,
	}
}

// fileUploads extracts every file posted under field.
func fileUploads(r *http.Request, field string) []*handlers.Upload {
	if !isMultipart(r) || r.MultipartForm == nil {
		return nil
	}
	var uploads []*handlers.Upload
	for _, hdr := range r.MultipartForm.File[field] {
		f, err := hdr.Open()
		if err != nil {
			continue
		}
		uploads = append(uploads, &handlers.Upload{
			Filename:    hdr.Filename,
			ContentType: hdr.Header.Get("Content-Type"),
			Body:        f,
		})
	}
	return uploads
}
