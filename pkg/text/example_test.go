package text_test

import (
	"fmt"

	"github.com/walteh/exampler/pkg/text"
)

func ExampleUnindent() {
	body := "    public int zero() {\n        return 0;\n    }"

	fmt.Println(text.Unindent(body))

	// Output:
	// public int zero() {
	//     return 0;
	// }
}

func ExampleWrap() {
	fmt.Println(text.Wrap("```java\n", "return 0;\n", "```"))

	// Output:
	// ```java
	// return 0;
	// ```
}
