/*
Package cods holds what the container packages share: the error taxonomy
and the callback types used to customize comparison, equality, teardown
and formatting.

The containers themselves live in sub-packages:

	array        growable array with negative-index normalization
	sortedarray  ordered array with binary-search insertion
	linkedlist   singly linked list
	fixedarray   fixed-capacity slot array
	bits         packed bit array
	arraymap     key/value map over a sorted key array

None of the containers synchronize internally. Errors are reported as
wrapped sentinels; test them with errors.Is.
*/
package cods
