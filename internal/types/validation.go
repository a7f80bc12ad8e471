package types

import "fmt"

// ------------------------------
// Local Validation
// ------------------------------
//
// The server validates everything it receives; the client only rejects
// inputs whose round trip would be pointless.

// ValidateEntryImport checks the invariants enforced locally before an entry
// import request is issued.
func ValidateEntryImport(req *EntryImportRequest) error {
	if req == nil {
		return fmt.Errorf("entry import request is required")
	}
	if req.URL == "" {
		return fmt.Errorf("url is required")
	}
	return nil
}
