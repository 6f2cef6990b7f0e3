package htmlbind

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type person struct {
	FirstName string `goquery:"#firstName"`
	LastName  string `goquery:"#lastName"`
}

type parent struct {
	FirstName string   `goquery:"#firstName"`
	LastName  string   `goquery:"#lastName"`
	Spouse    *person  `goquery:"#spouse"`
	Children  []person `goquery:"#children li"`
}

type item struct {
	ID     int       `goquery:",[data-id]"`
	Title  string    `goquery:"a.title"`
	Link   string    `goquery:"a.title,[href]"`
	Points int       `goquery:".points"`
	Posted time.Time `goquery:"time,[datetime]"`
	Tags   []string  `goquery:".tags li"`
}

type page struct {
	Title string            `goquery:"title"`
	Items []item            `goquery:"ul.items li.item"`
	Slugs map[int]string    `goquery:"ul.items li.item,[data-id],[data-slug]"`
	Links map[string]string `goquery:"ul.items li.item a.title,text,[href]"`
}

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	bs, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return bs
}
