package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/abeheron1/mock-data-holder/internal/common"
	"github.com/abeheron1/mock-data-holder/internal/models"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"
)

type (
	RestDataResponseModel struct {
		Data  interface{} `json:"data"`
		Links Links       `json:"links"`
	}

	RestPaginatedResponseModel[T any] struct {
		Data  T              `json:"data"`
		Links LinksPaginated `json:"links"`
		Meta  MetaPaginated  `json:"meta"`
	}

	Links struct {
		Self string `json:"self"`
	}

	LinksPaginated struct {
		Self  string `json:"self"`
		First string `json:"first,omitempty"`
		Prev  string `json:"prev,omitempty"`
		Next  string `json:"next,omitempty"`
		Last  string `json:"last,omitempty"`
	}

	MetaPaginated struct {
		TotalRecords int `json:"totalRecords"`
		TotalPages   int `json:"totalPages"`
	}

	RestErrorResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Code    interface{} `json:"code"`
		Message string      `json:"message" example:"error"`
	}

	RestErrorValidationResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Message string      `json:"message" example:"validation error"`
		Errors  interface{} `json:"errors"`
	}
)

// PaginateableContent is any record that knows its wire representation.
type PaginateableContent[T any] interface {
	ToModelResponse() T
}

func RestSuccessResponse(c echo.Context, code int, in interface{}) error {
	return c.JSON(code, in)
}

// RestDataResponse wraps a single resource in the data/links envelope.
func RestDataResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, RestDataResponseModel{
		Data:  data,
		Links: Links{Self: c.Request().URL.String()},
	})
}

// RestPaginatedResponse wraps a result page in the data/links/meta envelope,
// deriving first/prev/next/last links from the request URL.
func RestPaginatedResponse[ModelResponse any, E PaginateableContent[ModelResponse]](c echo.Context, page models.Page[E]) error {
	contents := make([]ModelResponse, 0, len(page.Data))
	for _, datum := range page.Data {
		contents = append(contents, datum.ToModelResponse())
	}

	return c.JSON(http.StatusOK, RestPaginatedResponseModel[[]ModelResponse]{
		Data:  contents,
		Links: paginatedLinks(c, page.CurrentPage, page.PageSize, page.TotalPages()),
		Meta: MetaPaginated{
			TotalRecords: page.TotalRecords,
			TotalPages:   page.TotalPages(),
		},
	})
}

func paginatedLinks(c echo.Context, currentPage, pageSize, totalPages int) LinksPaginated {
	links := LinksPaginated{
		Self: c.Request().URL.String(),
	}

	if totalPages > 0 {
		links.First = pageLink(c, 1, pageSize)
		links.Last = pageLink(c, totalPages, pageSize)
	}
	if currentPage > 1 && totalPages > 0 {
		links.Prev = pageLink(c, currentPage-1, pageSize)
	}
	if currentPage < totalPages {
		links.Next = pageLink(c, currentPage+1, pageSize)
	}

	return links
}

func pageLink(c echo.Context, page, pageSize int) string {
	u := *c.Request().URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("page-size", strconv.Itoa(pageSize))
	u.RawQuery = q.Encode()

	return u.String()
}

func RestErrorResponse(c echo.Context, statusCode int, err error) error {
	res := RestErrorResponseModel{
		Status:  "error",
		Code:    statusCode,
		Message: err.Error(),
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		res.Code = echoErr.Code
		res.Message = echoErr.Message.(string)
	}

	var data models.ErrorDetail
	if errors.As(err, &data) {
		res.Code = data.Code
		res.Message = data.ErrorMessage.Error()
	}
	return c.JSON(statusCode, res)
}

func RestErrorValidationResponse(c echo.Context, errors interface{}) error {
	res := RestErrorValidationResponseModel{
		Status:  "error",
		Message: common.ErrValidation.Error(),
	}
	if data, ok := errors.(*multierror.Error); ok {
		res.Errors = data.Errors
	}

	return c.JSON(http.StatusUnprocessableEntity, res)
}
