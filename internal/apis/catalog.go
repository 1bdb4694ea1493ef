package apis

import (
	"net/http"

	"github.com/mugiliam/fogcontroller/internal/catalogmanager"
	"github.com/mugiliam/fogcontroller/internal/common"
	"github.com/mugiliam/fogcontroller/internal/httpx"
)

func createCatalogItem(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	q, err := newRequest(r)
	if err != nil {
		return nil, err
	}
	b, err := q.payload("id")
	if err != nil {
		return nil, err
	}
	spec, aerr := catalogmanager.ParseCatalogItemSpec(b)
	if aerr != nil {
		return nil, aerr
	}
	item, aerr := catalogmanager.CreateCatalogItem(ctx, common.UserFromContext(ctx), spec)
	if aerr != nil {
		return nil, aerr
	}
	return ok(ctx, map[string]any{"id": item.ID}), nil
}

func updateCatalogItem(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	q, err := newRequest(r)
	if err != nil {
		return nil, err
	}
	id, err := q.int64Param("id")
	if err != nil {
		return nil, err
	}
	b, err := q.payload("id")
	if err != nil {
		return nil, err
	}
	spec, aerr := catalogmanager.ParseCatalogItemSpec(b)
	if aerr != nil {
		return nil, aerr
	}
	item, aerr := catalogmanager.UpdateCatalogItem(ctx, common.UserFromContext(ctx), id, spec)
	if aerr != nil {
		return nil, aerr
	}
	return ok(ctx, map[string]any{"id": item.ID}), nil
}

func deleteCatalogItem(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	q, err := newRequest(r)
	if err != nil {
		return nil, err
	}
	id, err := q.int64Param("id")
	if err != nil {
		return nil, err
	}
	if aerr := catalogmanager.DeleteCatalogItem(ctx, common.UserFromContext(ctx), id); aerr != nil {
		return nil, aerr
	}
	return ok(ctx, nil), nil
}
