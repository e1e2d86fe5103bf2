package fixtures

import (
	"errors"
	"testing"

	"github.com/bloglist/e2etest/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	set := Default()

	require.NoError(t, set.Validate())
	assert.Len(t, set.Users, 2)
	assert.Len(t, set.Blogs, 3)

	matti, ok := set.User("mluukkai")
	require.True(t, ok)
	assert.Equal(t, "Matti Luukkainen logged in", matti.LoggedInText())
	testor, ok := set.User("testor1")
	require.True(t, ok)
	assert.Equal(t, "Aa123456", testor.Password)

	blog, err := set.Blog(0)
	require.NoError(t, err)
	assert.Equal(t, "first blog title Testor", blog.Heading())
}

func TestLoad_EmptyPath(t *testing.T) {
	set, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), set)
}

func TestLoad_File(t *testing.T) {
	set, err := Load("testdata/fixtures.yaml")
	require.NoError(t, err)

	assert.Equal(t, []models.User{
		{Name: "Matti Luukkainen", Username: "mluukkai", Password: "salainen"},
		{Name: "Testor 1", Username: "testor1", Password: "Aa123456"},
	}, set.Users)
	assert.Equal(t, []models.Blog{
		{Title: "first blog title", Author: "Testor", URL: "test url"},
		{Title: "second blog title", Author: "Testor2", URL: "test url2"},
		{Title: "third blog title", Author: "Testor3", URL: "test url3"},
	}, set.Blogs)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "missing file", path: "testdata/does_not_exist.yaml"},
		{name: "malformed yaml", path: "testdata/malformed.yaml"},
		{name: "duplicate username", path: "testdata/duplicate.yaml"},
		{name: "blog without url", path: "testdata/missing_url.yaml", wantErr: models.ErrEmptyURL},
		{name: "no users", path: "testdata/no_users.yaml", wantErr: ErrNoUsers},
		{name: "user without name", path: "testdata/no_name.yaml", wantErr: ErrEmptyName},
		{name: "fewer than three blogs", path: "testdata/users_only.yaml", wantErr: ErrTooFewBlogs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Load(tt.path)
			require.Error(t, err)
			assert.Nil(t, set)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "error %v should wrap %v", err, tt.wantErr)
			}
		})
	}
}

func TestSet_UserNotFound(t *testing.T) {
	set := Default()

	_, ok := set.User("nobody")
	assert.False(t, ok)
}

func TestSet_BlogOutOfRange(t *testing.T) {
	set := &Set{Users: Default().Users}

	for _, i := range []int{-1, 0, 3} {
		_, err := set.Blog(i)
		assert.Error(t, err, "Blog(%d) on an empty set", i)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		path string
		root string
		want string
	}{
		{name: "empty path", path: "", root: "..", want: ""},
		{name: "absolute path", path: "/etc/fixtures.yaml", root: "..", want: "/etc/fixtures.yaml"},
		{name: "relative path", path: "internal/fixtures/testdata/fixtures.yaml", root: "..", want: "../internal/fixtures/testdata/fixtures.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.path, tt.root))
		})
	}
}

func TestLoad_ResolvedFromPackageDirectory(t *testing.T) {
	// how the e2e package loads E2E_FIXTURES given relative to the module root
	set, err := Load(Resolve("internal/fixtures/testdata/fixtures.yaml", "../.."))
	require.NoError(t, err)
	assert.Len(t, set.Blogs, MinBlogs)
}
