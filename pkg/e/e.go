package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")

	// 404 Not Found
	ErrProductNotFound  = fmt.Errorf("product with given `id` not found")
	ErrCategoryNotFound = fmt.Errorf("category with given `id` not found")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrProductNameRequired  = fmt.Errorf("product name is required")
	ErrCategoryNameRequired = fmt.Errorf("category name is required")
	ErrInvalidProductID     = fmt.Errorf("invalid product id")
	ErrInvalidCategoryID    = fmt.Errorf("invalid category id")
	ErrInvalidPrice         = fmt.Errorf("price must be a non-negative decimal")
	ErrPricePrecision       = fmt.Errorf("price must have at most 7 digits and 2 decimal places")
	ErrBothDatesRequired    = fmt.Errorf("both start_date and end_date are required as query parameters")
	ErrInvalidDateFormat    = fmt.Errorf("invalid date format. Date format should be YYYY-MM-DD")
	ErrInvalidDateOrder     = fmt.Errorf("end date must be after start date")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
