package metadata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maplegrove-lab/station-summary/config"
	"github.com/maplegrove-lab/station-summary/tables"
)

func TestImageURL(t *testing.T) {
	url := ImageURL(config.DefaultImageURLTemplate, "92231001")
	assert.Equal(t,
		"https://maplegrove-lab.github.io/arboretum/Images/92231001/1.jpeg", url)
}

func TestImagesOutputPath(t *testing.T) {
	assert.Equal(t, "joined_dendro_with_images.csv", ImagesOutputPath("joined_dendro.csv"))
	assert.Equal(t,
		filepath.Join("meta", "joined_dendro_with_images.csv"),
		ImagesOutputPath(filepath.Join("meta", "joined_dendro.csv")))
}

func TestAddImageURLs(t *testing.T) {
	template := "https://photos.example.org/{sensor_id}/1.jpeg"

	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "joined_dendro.csv")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	t.Run("appends an image_url column per sensor", func(t *testing.T) {
		input := write(t, "sensor_id,Site\n92231001,North Ridge\n92231002,South Bowl\n")
		output := ImagesOutputPath(input)

		count, err := AddImageURLs(input, output, template)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		rows, err := tables.ReadCSVFile(output, ',')
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"sensor_id", "Site", "image_url"}, rows[0])
		assert.Equal(t, "https://photos.example.org/92231001/1.jpeg", rows[1][2])
		assert.Equal(t, "https://photos.example.org/92231002/1.jpeg", rows[2][2])
	})

	t.Run("sensor id column is matched case-insensitively", func(t *testing.T) {
		input := write(t, "Sensor_ID,Site\n92231001,North Ridge\n")
		output := ImagesOutputPath(input)

		_, err := AddImageURLs(input, output, template)
		require.NoError(t, err)

		rows, err := tables.ReadCSVFile(output, ',')
		require.NoError(t, err)
		assert.Equal(t, "https://photos.example.org/92231001/1.jpeg", rows[1][2])
	})

	t.Run("an existing image_url column is overwritten", func(t *testing.T) {
		input := write(t, "sensor_id,image_url\n92231001,stale\n")
		output := ImagesOutputPath(input)

		_, err := AddImageURLs(input, output, template)
		require.NoError(t, err)

		rows, err := tables.ReadCSVFile(output, ',')
		require.NoError(t, err)
		assert.Equal(t, []string{"sensor_id", "image_url"}, rows[0])
		assert.Equal(t, "https://photos.example.org/92231001/1.jpeg", rows[1][1])
	})

	t.Run("header-only input writes a header-only table", func(t *testing.T) {
		input := write(t, "sensor_id,Site\n")
		output := ImagesOutputPath(input)

		count, err := AddImageURLs(input, output, template)
		require.NoError(t, err)
		assert.Zero(t, count)

		rows, err := tables.ReadCSVFile(output, ',')
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"sensor_id", "Site", "image_url"}}, rows)
	})

	t.Run("missing sensor_id column is an error", func(t *testing.T) {
		input := write(t, "Site\nNorth Ridge\n")

		_, err := AddImageURLs(input, ImagesOutputPath(input), template)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sensor_id")
	})

	t.Run("empty template is an error", func(t *testing.T) {
		input := write(t, "sensor_id\n92231001\n")

		_, err := AddImageURLs(input, ImagesOutputPath(input), "")
		require.Error(t, err)
	})
}
