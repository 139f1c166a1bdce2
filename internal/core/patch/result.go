package patch

// ChangeStatus describes the outcome of a patch attempt.
type ChangeStatus string

const (
	// ChangePatched means new content was produced and should be written.
	ChangePatched ChangeStatus = "patched"
	// ChangeNoAnchor means no insertion point was found; the file was left
	// untouched and the entry must be added by hand.
	ChangeNoAnchor ChangeStatus = "no-anchor"
)

// Result is the outcome of applying a patcher to config file content.
// Content holds the complete new file content only when Status is
// ChangePatched; the original content is never modified in place.
type Result struct {
	Status  ChangeStatus
	Content []byte
}
