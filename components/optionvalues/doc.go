// Package optionvalues provides a small net/http handler that converts option
// labels typed in a form into their canonical option values.
//
// GET and HEAD requests read a single label from the query string. POST
// requests accept a JSON body of the form {"labels": [...]} and convert every
// label in one round trip. Labels that cannot be converted produce a 422
// response carrying the offending label so the form can show a validation
// message next to the input.
package optionvalues
