package jsonccst_test

import (
	"fmt"

	"github.com/corewriter/jsonccst"
)

func ExampleParseObject() {
	obj, err := jsonccst.ParseObject(`{"name": "Alice"}`)
	if err != nil {
		panic(err)
	}
	fmt.Println(obj.Get("name").Value.(*jsonccst.StringNode).Value())
	// Output:
	// Alice
}

func ExampleRender() {
	obj, _ := jsonccst.ParseObject("{\n  // a comment\n  \"title\": \"My App\"\n}")
	fmt.Print(jsonccst.Render(obj))
	// Output:
	// {
	//   // a comment
	//   "title": "My App"
	// }
}

func ExampleReconcile() {
	obj, _ := jsonccst.ParseObject(`{"enabled": true, "extends": ["config:recommended"]}`)
	target := jsonccst.NewObjectValue().
		Set("enabled", jsonccst.Bool(true)).
		Set("extends", jsonccst.Arr(jsonccst.String("config:base")))
	if err := jsonccst.Reconcile(obj, target, "  "); err != nil {
		panic(err)
	}
	fmt.Println(jsonccst.Render(obj))
	// Output:
	// {"enabled": true, "extends": ["config:base"]}
}

func ExampleStringifyPreservingComments() {
	target := jsonccst.NewObjectValue().Set("prHourlyLimit", jsonccst.Int(2))
	out, err := jsonccst.StringifyPreservingComments(target, nil, jsonccst.Options{})
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output:
	// {
	//   "prHourlyLimit": 2
	// }
}
