package provider

// CategoryKeywords maps Kakao category group codes to search keywords
// understood by the Naver local search. Naver has no category parameter,
// so the keyword is appended to the free-text query instead. Codes
// without an entry contribute nothing to the query.
type CategoryKeywords map[string]string

// DefaultCategoryKeywords returns the built-in mapping for the most
// common category group codes. The table is expected to grow as more
// categories are needed; callers can pass their own mapping to NewNaver.
func DefaultCategoryKeywords() CategoryKeywords {
	return CategoryKeywords{
		"MT1": "마트",
		"CS2": "편의점",
		"FD6": "음식점",
		"CE7": "카페",
		"HP8": "병원",
		"PM9": "약국",
	}
}
