package controllers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahimx/inkblog/models"
)

func createPost(t *testing.T, app *testApp, cookie *http.Cookie, title string) models.Post {
	t.Helper()
	w := app.postForm("/new-post", url.Values{
		"title":     {title},
		"subtitle":  {"A subtitle"},
		"image_url": {"https://example.com/cover.jpg"},
		"body":      {"<p>Some body text.</p>"},
	}, cookie)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))

	var post models.Post
	require.NoError(t, app.db.Where("title = ?", title).First(&post).Error)
	return post
}

func TestCreatePostAndShow(t *testing.T) {
	app := newTestApp(t)
	author := app.register(t, "alice", "alice@x.com", "secret")

	post := createPost(t, app, author, "Hello")
	assert.NotEmpty(t, post.Date)

	w := app.get("/post/1")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Hello")
	assert.Contains(t, body, "No comments yet")
}

func TestHomeListsPosts(t *testing.T) {
	app := newTestApp(t)
	author := app.register(t, "alice", "alice@x.com", "secret")
	createPost(t, app, author, "First post")
	createPost(t, app, author, "Second post")

	w := app.get("/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "First post")
	assert.Contains(t, w.Body.String(), "Second post")
}

func TestShowMissingPostIs404(t *testing.T) {
	app := newTestApp(t)

	w := app.get("/post/999")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthorRoutesForbiddenForMembers(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "alice", "alice@x.com", "secret") // author
	member := app.register(t, "bob", "bob@x.com", "secret")

	form := url.Values{
		"title":     {"Sneaky"},
		"subtitle":  {"s"},
		"image_url": {"https://example.com/x.jpg"},
		"body":      {"b"},
	}

	for _, tc := range []struct {
		name string
		run  func() int
	}{
		{"new form", func() int { return app.get("/new-post", member).Code }},
		{"create", func() int { return app.postForm("/new-post", form, member).Code }},
		{"edit form", func() int { return app.get("/edit-post/1", member).Code }},
		{"update", func() int { return app.postForm("/edit-post/1", form, member).Code }},
		{"delete", func() int { return app.get("/delete/1", member).Code }},
	} {
		assert.Equal(t, http.StatusForbidden, tc.run(), tc.name)
	}

	// Anonymous callers get the same treatment.
	assert.Equal(t, http.StatusForbidden, app.postForm("/new-post", form).Code)

	var count int64
	require.NoError(t, app.db.Model(&models.Post{}).Count(&count).Error)
	assert.EqualValues(t, 0, count, "denied attempts must not mutate the store")
}

func TestCommentRequiresLogin(t *testing.T) {
	app := newTestApp(t)
	author := app.register(t, "alice", "alice@x.com", "secret")
	createPost(t, app, author, "Hello")

	w := app.postForm("/post/1", url.Values{"text": {"nice post"}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	var count int64
	require.NoError(t, app.db.Model(&models.Comment{}).Count(&count).Error)
	assert.EqualValues(t, 0, count, "no comment stored for anonymous caller")
}

func TestCommentCreated(t *testing.T) {
	app := newTestApp(t)
	author := app.register(t, "alice", "alice@x.com", "secret")
	createPost(t, app, author, "Hello")
	member := app.register(t, "bob", "bob@x.com", "secret")

	w := app.postForm("/post/1", url.Values{"text": {"nice post <script>alert(1)</script>"}}, member)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/post/1", w.Header().Get("Location"))

	var comment models.Comment
	require.NoError(t, app.db.First(&comment).Error)
	assert.Contains(t, comment.Text, "nice post")
	assert.NotContains(t, comment.Text, "<script>", "comment text is sanitized")
	assert.EqualValues(t, 1, comment.PostID)

	w = app.get("/post/1")
	assert.Contains(t, w.Body.String(), "nice post")
}

func TestEditPostChangesOnlySubmittedFields(t *testing.T) {
	app := newTestApp(t)
	author := app.register(t, "alice", "alice@x.com", "secret")
	original := createPost(t, app, author, "Hello")

	// Pre-filled form
	w := app.get("/edit-post/1", author)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hello")
	assert.Contains(t, w.Body.String(), "A subtitle")

	w = app.postForm("/edit-post/1", url.Values{
		"title":     {original.Title},
		"subtitle":  {"A different subtitle"},
		"image_url": {original.ImageURL},
		"body":      {original.Body},
	}, author)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/post/1", w.Header().Get("Location"))

	var updated models.Post
	require.NoError(t, app.db.First(&updated, original.ID).Error)
	assert.Equal(t, "A different subtitle", updated.Subtitle)
	assert.Equal(t, original.Title, updated.Title)
	assert.Equal(t, original.Body, updated.Body)
	assert.Equal(t, original.ImageURL, updated.ImageURL)
	assert.Equal(t, original.Date, updated.Date, "publish date survives edits")
	assert.Equal(t, original.UserID, updated.UserID, "author survives edits")
}

func TestDeletePostCascadesComments(t *testing.T) {
	app := newTestApp(t)
	author := app.register(t, "alice", "alice@x.com", "secret")
	post := createPost(t, app, author, "Hello")
	member := app.register(t, "bob", "bob@x.com", "secret")
	app.postForm("/post/1", url.Values{"text": {"first"}}, member)
	app.postForm("/post/1", url.Values{"text": {"second"}}, member)

	w := app.get("/delete/1", author)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	var posts, comments int64
	require.NoError(t, app.db.Model(&models.Post{}).Count(&posts).Error)
	require.NoError(t, app.db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&comments).Error)
	assert.EqualValues(t, 0, posts)
	assert.EqualValues(t, 0, comments, "comments are removed with their post")
}

func TestDuplicateTitleRejected(t *testing.T) {
	app := newTestApp(t)
	author := app.register(t, "alice", "alice@x.com", "secret")
	createPost(t, app, author, "Hello")

	w := app.postForm("/new-post", url.Values{
		"title":     {"Hello"},
		"subtitle":  {"again"},
		"image_url": {"https://example.com/x.jpg"},
		"body":      {"b"},
	}, author)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, app.db.Model(&models.Post{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
