package recipe

import (
	"strings"

	"recipe-generator/internal/pkg/common"
)

// minIngredients 引擎的最低可用食材數
// 呼叫端雖然會先行檢查，引擎仍需自行把關
const minIngredients = 2

// NormalizeIngredients 清理並去重使用者輸入的食材清單
// 去除前後空白、丟棄空字串、以小寫統一顯示並以小寫鍵去重，保留原始順序
func NormalizeIngredients(raw []string) ([]string, error) {
	seen := make(map[string]struct{}, len(raw))
	cleaned := make([]string, 0, len(raw))

	for _, item := range raw {
		name := strings.ToLower(strings.TrimSpace(item))
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		cleaned = append(cleaned, name)
	}

	if len(cleaned) < minIngredients {
		return nil, common.NewValidationError("please provide at least 2 ingredients")
	}

	return cleaned, nil
}
