package week_grid

import "sort"

// palette фиксированная палитра CSS-классов для раскраски бронирований
// по владельцу. Порядок значим: цвет выбирается по позиции пользователя
// в отсортированном списке известных ID по модулю размера палитры.
var palette = []string{
	"from-green-400/95 to-green-600/95",
	"from-blue-400/95 to-blue-600/95",
	"from-cyan-400/95 to-cyan-600/95",
	"from-teal-400/95 to-teal-600/95",
	"from-indigo-400/95 to-indigo-600/95",
	"from-pink-400/95 to-pink-600/95",
	"from-yellow-400/95 to-yellow-500/95",
	"from-purple-400/95 to-purple-600/95",
	"from-rose-400/95 to-rose-600/95",
	"from-orange-400/95 to-orange-600/95",
}

// buildColorMap строит детерминированное отображение userID -> цвет.
// Отображение стабильно для фиксированного множества пользователей:
// повторный вызов с тем же набором ID дает те же цвета.
func buildColorMap(userIDs []int64) map[int64]string {
	unique := make(map[int64]struct{}, len(userIDs))
	sorted := make([]int64, 0, len(userIDs))
	for _, id := range userIDs {
		if _, seen := unique[id]; seen {
			continue
		}
		unique[id] = struct{}{}
		sorted = append(sorted, id)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	colors := make(map[int64]string, len(sorted))
	for idx, id := range sorted {
		colors[id] = palette[idx%len(palette)]
	}
	return colors
}
