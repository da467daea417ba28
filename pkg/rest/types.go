// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// SearchRequest Запрос поиска по кодам групп сходства
type SearchRequest struct {
	// GroupCode Один или несколько кодов, разделённых пробельными символами.
	// Пустая строка допустима и означает пустой набор кодов.
	GroupCode *string `json:"group_code" validate:"required"`
}

// ClassificationDetail Коды, найденные в одном классе
type ClassificationDetail struct {
	Classification string   `json:"classification"`
	GroupCodes     []string `json:"group_codes"`
}

// SearchResponse Результат поиска
type SearchResponse struct {
	ClassificationDetails []ClassificationDetail `json:"classification_details"`
	RemarkDetails         []ClassificationDetail `json:"remark_details"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	// SupportID Идентификатор запроса для поддержки
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
