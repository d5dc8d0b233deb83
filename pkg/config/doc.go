/*
Package config loads example configuration files for exampler.

	       +------------+
	       |    File    |
	       | (Examples) |
	       +-----+------+
	             |
	   +---------+---------+
	   |         |         |
	+--+---+  +--+---+  +--+--+
	| JSON |  | YAML |  | HCL |
	+------+  +------+  +-----+

🎯 Purpose:
- Reads an example definition file from disk
- Decodes it into records while keeping document order
- Rejects unknown fields and duplicate ids

🔄 Flow:
1. Pick a format from the file extension
2. Decode the top-level mapping of id to record
3. Hand ordered entries to example.Build

📝 Required fields are not checked here. A record missing usage, from, to or
in still loads and is reported by the example compiler, so one bad record does
not hide the others.

🔍 Example (JSON):

	{
	    "zero": {
	        "usage": "Returning a constant",
	        "from": "group zero",
	        "to": "group zero",
	        "in": "Example.java",
	        "prefix": "```java\n",
	        "suffix": "\n```"
	    }
	}

🔍 Example (HCL):

	example "zero" {
	  usage = "Returning a constant"
	  from  = "group zero"
	  to    = "group zero"
	  in    = "Example.java"
	}
*/
package config
