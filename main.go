// tzol prints a 24-hour clock strip for the local timezone and each named
// city, with workday hours shaded and the current hour marked.
//
// Usage:
//
//	tzol                         # local row only
//	tzol London Tokyo            # local row plus one row per city
//	tzol "New York" Paris        # quote multi-word city names
//	tzol cities [filter]         # list known cities
//	tzol doctor                  # check the city table and setup
package main

import "github.com/jamonette/tzol/cmd"

func main() {
	cmd.Execute()
}
