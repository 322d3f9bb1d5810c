package utility

// Contains kiểm tra một phần tử có trong slice hay không
func Contains[T comparable](slice []T, item T) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}

// Exclude trả về slice mới không chứa phần tử bị loại, giữ nguyên thứ tự
func Exclude[T comparable](slice []T, excluded T) []T {
	result := make([]T, 0, len(slice))
	for _, v := range slice {
		if v != excluded {
			result = append(result, v)
		}
	}
	return result
}

// Unique loại bỏ các phần tử trùng lặp, giữ thứ tự xuất hiện đầu tiên
func Unique[T comparable](slice []T) []T {
	seen := make(map[T]struct{}, len(slice))
	result := make([]T, 0, len(slice))
	for _, v := range slice {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
