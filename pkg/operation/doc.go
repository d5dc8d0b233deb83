/*
Package operation runs snippet extraction over a set of changed files.

	+----------------+
	|  ChangeSource  |
	|  (file list)   |
	+-------+--------+
	        |
	+-------+--------+
	|   Run (pool)   |
	| match/extract  |
	+-------+--------+
	        |
	+-------+--------+
	|     Report     |
	|   (results)    |
	+----------------+

🎯 Purpose:
- Pairs each changed file with the example registered for its basename
- Fetches content only for files that have an example
- Collects one Result per listed file

🔄 Flow:
1. List changed files from the source
2. Drop files that fail the include globs
3. Extract matched files on a bounded worker pool
4. Return results in listing order

⚡ Failure model:
- A file that cannot be fetched or extracted fails on its own Result
- The run fails only when listing fails or the context is cancelled
*/
package operation
