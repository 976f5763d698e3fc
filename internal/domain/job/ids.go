package job

import (
	"strconv"
	"strings"
)

// JoinIDs encodes target ids as the CSV form stored on a BulkJob.
func JoinIDs(ids []uint) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatUint(uint64(id), 10))
	}
	return strings.Join(parts, ",")
}

// IDs decodes the stored CSV back into target ids, skipping anything
// unparsable.
func (j *BulkJob) IDs() []uint {
	if j.TargetIDs == "" {
		return nil
	}
	parts := strings.Split(j.TargetIDs, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			continue
		}
		ids = append(ids, uint(v))
	}
	return ids
}
