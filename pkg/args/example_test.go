package args_test

import (
	"errors"
	"fmt"

	"github.com/bartekus/schemargs/pkg/args"
)

func ExampleParse() {
	parsed, err := args.Parse("n#,b,s*", []string{"-nbs", "10", "Foo"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(parsed.GetInt('n'), parsed.GetBoolean('b'), parsed.GetString('s'))
	fmt.Println(parsed.Cardinality())
	// Output:
	// 10 true Foo
	// 3
}

func ExampleSchema_Scan_error() {
	schema := args.MustCompile("n#")
	_, err := schema.Scan([]string{"-n"})
	fmt.Println(err)
	fmt.Println(errors.Is(err, args.ErrMissingParameter))
	// Output:
	// could not find parameter for -n
	// true
}
