package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"danielsbarber/services/catalog"
)

func TestCatalog_Barbers(t *testing.T) {
	svc := &catalog.DefaultCatalogService{}

	barbers := svc.Barbers()
	require.Len(t, barbers, 3)
	assert.Equal(t, "Niajere Daniels", barbers[0].Name)
	assert.Equal(t, "Master Barber & Owner", barbers[0].Role)
}

func TestCatalog_Services(t *testing.T) {
	svc := &catalog.DefaultCatalogService{}

	services := svc.Services()
	require.Len(t, services, 4)
	assert.Equal(t, "Classic Haircut", services[0].Title)
	assert.Equal(t, "$55", services[0].Price)
}

func TestCatalog_BarberByID(t *testing.T) {
	svc := &catalog.DefaultCatalogService{}

	barber, ok := svc.BarberByID("1")
	require.True(t, ok)
	assert.Equal(t, "Niajere Daniels", barber.Name)

	_, ok = svc.BarberByID("99")
	assert.False(t, ok)

	_, ok = svc.BarberByID("not-a-number")
	assert.False(t, ok)
}
