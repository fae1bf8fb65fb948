// Package middleware connects i18n to net/http.
//
// I18n picks the best locale of a Bundle for every request and stores its proxy in
// the request context, where handlers read it with i18n.FromContext:
//
//	bundle, err := i18n.LoadBundle(ctx, storage.NewDir("locales"), manifest)
//	if err != nil {
//		return err
//	}
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
//		t, _ := i18n.FromContext(r.Context())
//		fmt.Fprintln(w, t.T("Hello {user}", i18n.M{"user": "Ann"}))
//	})
//
//	http.ListenAndServe(":8080", middleware.I18n(bundle)(mux))
//
// By default the locale comes from the "lang" query parameter, then the
// Accept-Language header. The chosen locale is echoed in Content-Language.
package middleware
