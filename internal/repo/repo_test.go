package repo

import (
	"sync"

	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/storage"
)

type testRepos struct {
	products   *StoreProductRepository
	categories *StoreCategoryRepository
	carts      *StoreCartRepository
}

func newTestRepos() testRepos {
	store := storage.NewMemoryStore()
	mu := &sync.Mutex{}
	return testRepos{
		products:   NewStoreProductRepository(store, mu),
		categories: NewStoreCategoryRepository(store, mu),
		carts:      NewStoreCartRepository(store, mu),
	}
}

func (tr testRepos) mustProduct(name string, price float64, stock int) models.Product {
	p, err := tr.products.Create(name, price, stock, nil)
	if err != nil {
		panic(err)
	}
	return p
}
