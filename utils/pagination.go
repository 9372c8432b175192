package utils

const pageSizeDefault = 20
const pageSizeMax = 100

// GetPaginationParams clamps caller-supplied offset and limit to usable
// values: negative or missing offsets become 0, missing limits take the
// default, and limits are capped so one request cannot page the whole table.
func GetPaginationParams(offset *int, limit *int) (int, int) {
	finalOffset := 0
	finalLimit := pageSizeDefault

	if offset != nil && *offset >= 0 {
		finalOffset = *offset
	}

	if limit != nil && *limit > 0 {
		finalLimit = min(*limit, pageSizeMax)
	}

	return finalOffset, finalLimit
}
