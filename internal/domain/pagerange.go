package domain

import (
	"sort"
	"strconv"
	"strings"

	apperrors "pdf-toolkit/pkg/errors"
)

// ParsePageRange parses a page selection like "1, 3-5" into an ascending,
// duplicate-free list of 1-based page indices. Tokens are comma-separated,
// each either a single integer or an inclusive range "a-b". A malformed
// token yields a validation error naming the token; an index beyond
// pageCount yields an out-of-range error. The output order is always
// ascending, regardless of how the ranges were written.
func ParsePageRange(spec string, pageCount int) ([]int, error) {
	trimmed := strings.TrimSpace(spec)
	if trimmed == "" {
		return nil, apperrors.NewValidationError("page range is required")
	}

	seen := make(map[int]bool)
	for _, raw := range strings.Split(trimmed, ",") {
		token := strings.TrimSpace(raw)
		if token == "" {
			return nil, apperrors.NewValidationError("empty page range token", spec)
		}

		first, last, err := parseRangeToken(token)
		if err != nil {
			return nil, err
		}
		if last > pageCount {
			return nil, apperrors.NewOutOfRangeError(
				"page index exceeds document page count",
				strconv.Itoa(last)+" > "+strconv.Itoa(pageCount),
			)
		}
		for p := first; p <= last; p++ {
			seen[p] = true
		}
	}

	pages := make([]int, 0, len(seen))
	for p := range seen {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	return pages, nil
}

// parseRangeToken parses a single token into an inclusive [first, last]
// pair. A plain integer n yields [n, n].
func parseRangeToken(token string) (int, int, error) {
	if left, right, isRange := strings.Cut(token, "-"); isRange {
		first, err := parsePageIndex(strings.TrimSpace(left), token)
		if err != nil {
			return 0, 0, err
		}
		last, err := parsePageIndex(strings.TrimSpace(right), token)
		if err != nil {
			return 0, 0, err
		}
		if last < first {
			return 0, 0, apperrors.NewValidationError("descending page range", token)
		}
		return first, last, nil
	}

	n, err := parsePageIndex(token, token)
	if err != nil {
		return 0, 0, err
	}
	return n, n, nil
}

// parsePageIndex parses a single 1-based page index.
func parsePageIndex(s, token string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperrors.NewValidationError("invalid page range token", token)
	}
	if n < 1 {
		return 0, apperrors.NewValidationError("page indices start at 1", token)
	}
	return n, nil
}
