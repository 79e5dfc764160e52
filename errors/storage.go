package errors

const (
	StorageLoadFailedErrorCode = 300_001
	StorageSaveFailedErrorCode = 300_002
)

// StorageLoadFailedError indicates the record store could not be read or decoded
var StorageLoadFailedError = new(StorageLoadFailedErrorCode, "StorageLoadFailed", "Loading books from %s failed: %v")

// StorageSaveFailedError indicates the record store could not be written
var StorageSaveFailedError = new(StorageSaveFailedErrorCode, "StorageSaveFailed", "Saving books to %s failed: %v")
