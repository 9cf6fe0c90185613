package article

import "strings"

// SanitizeTitle 标题清洗策略：仅在创建时执行一次
// 统一转小写，保留拉丁/西里尔字母、数字和连字符，其余字符替换为连字符
// 之后所有查找、更新、删除都用已存储的清洗结果原样匹配，搜索不做清洗
func SanitizeTitle(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'а' && r <= 'я':
			b.WriteRune(r)
		case r == 'ё':
			b.WriteRune(r)
		case r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}

	// 全部被替换成连字符的标题视为空
	if strings.Trim(b.String(), "-") == "" {
		return ""
	}
	return b.String()
}
