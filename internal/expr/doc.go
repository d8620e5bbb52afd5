// Package expr parses and evaluates quantity expressions such as
// "9.81 m/s^2", "(3 ft + 2 in) / s" or "$g * 2 kg".
//
// Grammar, loosest binding first:
//
//	sum     = product { ("+" | "-") product }
//	product = juxt { ("*" | "/" | "//") juxt }
//	juxt    = unary { power }
//	unary   = ("-" | "+") unary | power
//	power   = primary [ ("^" | "**") unary ]
//	primary = number | unit | "$" name | "(" sum ")" | "[" sum "]"
//
// Square brackets group like parentheses, so the output of format.String,
// e.g. "9.81[m/s^2]", parses back to the same quantity.
//
// Adjacent operands multiply and bind tighter than explicit operators, so
// "2 kg m" is 2 * kg * m and "1 km / 1 h" is (1 km) / (1 h). The exponent of ^
// binds to the right and must evaluate to a dimensionless quantity.
//
// Parse is independent of the number domain; Eval binds a parsed Node to a
// domain through an Env.
package expr
