package pkggraph_test

import (
	"fmt"

	"github.com/dartwatch/pubgraph/pkg/pkggraph"
	"github.com/dartwatch/pubgraph/pkg/pubspec"
)

// Build a graph from a programmatically constructed root node and print the
// diagnostic dump.
func ExampleBuildFromRoot() {
	libA := &pkggraph.PackageNode{
		Name: "libA",
		Path: "/pkgs/libA",
		Type: pubspec.DependencyHosted,
	}
	root := &pkggraph.PackageNode{
		Name:         "app",
		Path:         "/app",
		Type:         pubspec.DependencyPath,
		IsRoot:       true,
		Dependencies: []*pkggraph.PackageNode{libA},
	}

	g, err := pkggraph.BuildFromRoot(root, pkggraph.Options{SDKRoot: "/opt/dart-sdk"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(g.Dump())

	// Output:
	// $sdk (sdk) /opt/dart-sdk
	// app (path) /app [root]
	//   -> libA
	// libA (hosted) /pkgs/libA
}
