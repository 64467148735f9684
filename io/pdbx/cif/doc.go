/*
Package cif provides a parser that reads CIF v1.1 files.

See https://www.iucr.org/resources/cif/spec/version1.1 for a full
description of the CIF v1.1 syntax.
*/
package cif
