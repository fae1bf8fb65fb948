// Package storage reads catalog files from local directories, embedded filesystems or
// remote backends through a single Reader interface.
//
// Catalogs are fetched once, before an engine is built; nothing in the lookup path
// touches storage.
//
//	src := storage.NewDir("./locales")
//	data, err := src.Read(ctx, "nl/messages.mo")
//	if errors.Is(err, storage.ErrFileNotFound) {
//		// handle missing catalog
//	}
//
// Embedded catalogs work the same way:
//
//	//go:embed locales
//	var locales embed.FS
//
//	src := storage.NewFS(locales)
//
// Remote backends (see integration/storage/s3) classify their failures into the
// sentinel errors declared here so callers can react without importing SDK types.
package storage
