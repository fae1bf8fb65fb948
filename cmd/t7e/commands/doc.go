// Package commands implements the t7e command line tool.
//
// t7e resolves messages against the catalogs of a manifest, prints catalog
// metadata and evaluates Plural-Forms expressions:
//
//	t7e translate --locale nl "Hello"
//	t7e translate --locale pl --plural "%d files" -n 5 "%d file"
//	t7e inspect --entries nl/messages.mo
//	t7e plural "nplurals=3; plural=(n==1 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2);" 1 2 5 22
//
// Catalogs are read from T7E_CATALOG_DIR, or from S3 when T7E_S3_BUCKET is set.
package commands
