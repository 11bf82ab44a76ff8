package store

import "perf-analytics/internal/model"

// 內建名冊與準則，首次啟動（鍵不存在）時使用。

func defaultUsers() []model.User {
	return []model.User{
		{ID: 1, Name: "Галя", Role: model.RoleUser},
		{ID: 2, Name: "Петя", Role: model.RoleUser},
		{ID: 3, Name: "Валя", Role: model.RoleUser},
		{ID: 4, Name: "Толя", Role: model.RoleUser},
		{ID: 99, Name: "Администратор", Role: model.RoleAdmin},
	}
}

func defaultCriteria() []string {
	return []string{
		"Намерение",
		"Презентация",
		"Работа с клиентом",
		"Закрытые продажи",
		"Сопровождение",
		"Отказ",
	}
}
