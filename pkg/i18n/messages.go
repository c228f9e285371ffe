package i18n

// DefaultMessages returns built-in translations for all supported locales.
// These can be overridden by loading JSON files from a directory.
func DefaultMessages() map[Locale]map[string]string {
	return map[Locale]map[string]string{
		LocaleEn: enMessages,
		LocaleID: idMessages,
	}
}

var enMessages = map[string]string{
	// Common errors
	"error.not_found":         "The requested resource was not found",
	"error.unauthorized":      "Authentication required",
	"error.forbidden":         "You do not have permission to access this",
	"error.bad_request":       "Invalid request",
	"error.internal":          "An internal server error occurred",
	"error.too_many_requests": "Too many requests. Please try again later",
	"error.validation":        "Some fields are invalid",

	// Auth
	"auth.login_success":    "Welcome back!",
	"auth.login_failed":     "Email or password is incorrect",
	"auth.register_success": "Your account has been created",
	"auth.logout_success":   "You have been logged out",
	"auth.token_expired":    "Your session has expired. Please log in again",

	// Cart
	"cart.item_added":       "%s added to cart!",
	"cart.item_removed":     "%s removed from cart",
	"cart.cleared":          "Cart cleared!",
	"cart.empty":            "Your cart is empty",
	"cart.discount_applied": "Discount %s applied!",
	"cart.discount_removed": "Discount removed!",
	"cart.invalid_code":     "Invalid discount code",
	"cart.min_order":        "Minimum order amount is Rp %s",

	// Checkout
	"checkout.missing_fields":  "Please fill in all required fields",
	"checkout.missing_address": "Please provide delivery address",
	"checkout.order_placed":    "Order placed successfully!",

	// Events
	"event.booking_confirmed": "Booking confirmed successfully!",
	"event.fully_booked":      "This event is fully booked",

	// Community
	"community.vote_recorded": "Vote recorded!",
	"community.already_voted": "You have already voted in this poll",
}

var idMessages = map[string]string{
	// Common errors
	"error.not_found":         "Sumber daya yang diminta tidak ditemukan",
	"error.unauthorized":      "Autentikasi diperlukan",
	"error.forbidden":         "Anda tidak memiliki izin untuk mengakses ini",
	"error.bad_request":       "Permintaan tidak valid",
	"error.internal":          "Terjadi kesalahan pada server",
	"error.too_many_requests": "Terlalu banyak permintaan. Silakan coba lagi nanti",
	"error.validation":        "Beberapa kolom tidak valid",

	// Auth
	"auth.login_success":    "Selamat datang kembali!",
	"auth.login_failed":     "Email atau kata sandi salah",
	"auth.register_success": "Akun Anda telah dibuat",
	"auth.logout_success":   "Anda telah keluar",
	"auth.token_expired":    "Sesi Anda telah berakhir. Silakan masuk kembali",

	// Cart
	"cart.item_added":       "%s ditambahkan ke keranjang!",
	"cart.item_removed":     "%s dihapus dari keranjang",
	"cart.cleared":          "Keranjang dikosongkan!",
	"cart.empty":            "Keranjang Anda kosong",
	"cart.discount_applied": "Diskon %s diterapkan!",
	"cart.discount_removed": "Diskon dihapus!",
	"cart.invalid_code":     "Kode diskon tidak valid",
	"cart.min_order":        "Minimum pemesanan adalah Rp %s",

	// Checkout
	"checkout.missing_fields":  "Mohon isi semua kolom yang wajib",
	"checkout.missing_address": "Mohon masukkan alamat pengiriman",
	"checkout.order_placed":    "Pesanan berhasil dibuat!",

	// Events
	"event.booking_confirmed": "Pemesanan berhasil dikonfirmasi!",
	"event.fully_booked":      "Acara ini sudah penuh",

	// Community
	"community.vote_recorded": "Suara tercatat!",
	"community.already_voted": "Anda sudah memberikan suara di jajak pendapat ini",
}
