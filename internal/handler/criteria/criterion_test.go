package criteria

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"perf-analytics/internal/kv"
	"perf-analytics/internal/store"
	"perf-analytics/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type syncPool struct{}

func (syncPool) Submit(t worker.Task) { t() }
func (syncPool) Stop()                {}

type errBinder struct{}

func (errBinder) Bind(i any, c echo.Context) error { return errors.New("bind") }

type errValidator struct{}

func (errValidator) Validate(i any) error { return errors.New("v") }

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

func newStore(t *testing.T) *store.Store {
	t.Helper()
	kvs := &kv.FakeKV{
		GetFn: func(context.Context, string) (string, error) { return "", kv.ErrKeyNotFound },
		SetFn: func(context.Context, string, string) error { return nil },
	}
	st, err := store.Open(context.Background(), kvs, syncPool{})
	require.NoError(t, err)
	return st
}

func newFormCtx(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestListCriteriaHandler(t *testing.T) {
	e := echo.New()
	ctx, rec := newFormCtx(e, http.MethodGet, "")
	require.NoError(t, ListCriteriaHandler(newStore(t))(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	var names []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &names))
	require.Len(t, names, 6)
	require.Equal(t, "Намерение", names[0])
}

func TestCreateCriterionHandler(t *testing.T) {
	// bind error
	e := echo.New()
	e.Binder = errBinder{}
	ctx, rec := newFormCtx(e, http.MethodPost, "")
	require.NoError(t, CreateCriterionHandler(newStore(t))(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validate error
	e = echo.New()
	e.Validator = errValidator{}
	ctx, rec = newFormCtx(e, http.MethodPost, "name=")
	require.NoError(t, CreateCriterionHandler(newStore(t))(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// success
	e = echo.New()
	e.Validator = okValidator{}
	st := newStore(t)
	ctx, rec = newFormCtx(e, http.MethodPost, "name=Возврат")
	require.NoError(t, CreateCriterionHandler(st)(ctx))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, st.Criteria(), 7)

	// duplicate name is a no-op, still 201
	ctx, rec = newFormCtx(e, http.MethodPost, "name=Возврат")
	require.NoError(t, CreateCriterionHandler(st)(ctx))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, st.Criteria(), 7)
}

func TestDeleteCriterionHandler(t *testing.T) {
	e := echo.New()
	st := newStore(t)

	ctx, rec := newFormCtx(e, http.MethodDelete, "")
	ctx.SetParamNames("name")
	ctx.SetParamValues("Намерение")
	require.NoError(t, DeleteCriterionHandler(st)(ctx))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Len(t, st.Criteria(), 5)

	// unknown name is still 204
	ctx, rec = newFormCtx(e, http.MethodDelete, "")
	ctx.SetParamNames("name")
	ctx.SetParamValues("Нет такого")
	require.NoError(t, DeleteCriterionHandler(st)(ctx))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Len(t, st.Criteria(), 5)
}
