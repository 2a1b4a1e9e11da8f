package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	materials map[string]*Material
}

func newMemoryRepo() *memoryRepo { return &memoryRepo{materials: map[string]*Material{}} }

func (m *memoryRepo) Create(_ context.Context, mat *Material) error {
	m.materials[mat.ID.String()] = mat
	return nil
}

func (m *memoryRepo) GetByID(_ context.Context, id string) (*Material, error) {
	mat, ok := m.materials[id]
	if !ok {
		return nil, fmt.Errorf("material not found")
	}
	return mat, nil
}

func (m *memoryRepo) List(_ context.Context, availableOnly bool) ([]*Material, error) {
	var out []*Material
	for _, mat := range m.materials {
		if !availableOnly || mat.Available {
			out = append(out, mat)
		}
	}
	return out, nil
}

func (m *memoryRepo) Update(_ context.Context, mat *Material) error {
	m.materials[mat.ID.String()] = mat
	return nil
}

func TestCreateMaterialDefaultsToAvailable(t *testing.T) {
	svc := NewService(newMemoryRepo())

	m, err := svc.CreateMaterial(context.Background(), MaterialRequest{
		Name:        "Mesh Vinyl",
		Description: "Perforated material ideal for windy locations",
		PricePerSqm: 280,
	})
	require.NoError(t, err)

	assert.True(t, m.Available)
	assert.Equal(t, 280.0, m.PricePerSqm)
}

func TestCreateMaterialValidation(t *testing.T) {
	svc := NewService(newMemoryRepo())

	_, err := svc.CreateMaterial(context.Background(), MaterialRequest{PricePerSqm: 280})
	assert.Error(t, err)

	_, err = svc.CreateMaterial(context.Background(), MaterialRequest{Name: "Mesh Vinyl"})
	assert.Error(t, err)

	_, err = svc.CreateMaterial(context.Background(), MaterialRequest{Name: "Mesh Vinyl", PricePerSqm: -5})
	assert.Error(t, err)
}

func TestUpdateMaterialTogglesAvailability(t *testing.T) {
	svc := NewService(newMemoryRepo())
	m, err := svc.CreateMaterial(context.Background(), MaterialRequest{Name: "Backlit Film", PricePerSqm: 350})
	require.NoError(t, err)

	off := false
	updated, err := svc.UpdateMaterial(context.Background(), m.ID.String(), MaterialRequest{Available: &off})
	require.NoError(t, err)
	assert.False(t, updated.Available)
	// untouched fields survive partial updates
	assert.Equal(t, "Backlit Film", updated.Name)
	assert.Equal(t, 350.0, updated.PricePerSqm)
}

func TestListMaterialsFiltersUnavailable(t *testing.T) {
	svc := NewService(newMemoryRepo())
	_, err := svc.CreateMaterial(context.Background(), MaterialRequest{Name: "Standard Vinyl", PricePerSqm: 180})
	require.NoError(t, err)

	off := false
	_, err = svc.CreateMaterial(context.Background(), MaterialRequest{Name: "Discontinued", PricePerSqm: 99, Available: &off})
	require.NoError(t, err)

	all, err := svc.ListMaterials(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	available, err := svc.ListMaterials(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "Standard Vinyl", available[0].Name)
}
