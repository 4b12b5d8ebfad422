package integrations_test

import (
	"fmt"

	"github.com/mythitorium/swagrinth/pkg/integrations"
)

func ExampleJoinURL() {
	// Segments are path-escaped, so identifiers cannot add path components
	fmt.Println(integrations.JoinURL("https://api.modrinth.com/v2/", "project", "sodium"))
	fmt.Println(integrations.JoinURL("https://api.modrinth.com/v2", "user", "a b", "projects"))
	fmt.Println(integrations.JoinURL("https://api.modrinth.com/v2/", "project", "a/b"))
	// Output:
	// https://api.modrinth.com/v2/project/sodium
	// https://api.modrinth.com/v2/user/a%20b/projects
	// https://api.modrinth.com/v2/project/a%2Fb
}

func ExampleURLEncode() {
	// URL-encode special characters for API queries
	fmt.Println(integrations.URLEncode(`[["categories:fabric"]]`))
	fmt.Println(integrations.URLEncode("fabric api"))
	// Output:
	// %5B%5B%22categories%3Afabric%22%5D%5D
	// fabric+api
}

func ExampleResponse_OK() {
	resp := &integrations.Response{StatusCode: 404}
	fmt.Println(resp.OK())
	// Output:
	// false
}
