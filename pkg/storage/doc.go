// Package storage persists generated images on local disk or in S3.
//
// Both backends implement Storage. Object names are relative, slash
// separated paths such as "wifi_home.png"; names that are empty, absolute
// or contain ".." segments are rejected with ErrInvalidName.
//
//	st, err := storage.NewLocalStorage("./output", "")
//	if err != nil {
//		return err
//	}
//	url, err := st.Put(ctx, "wifi_home.png", png, "image/png")
//
// New selects a backend from a Config loaded from STORAGE_* variables.
// LocalStorage replaces files atomically. S3Storage maps SDK failures onto
// sentinels such as ErrAccessDenied and ErrBucketNotFound; use WithS3Client
// to plug in a custom or fake client.
package storage
