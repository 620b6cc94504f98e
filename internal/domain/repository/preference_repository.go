package repository

// PreferenceRepository puerto de preferencias de interfaz (por ejemplo, la
// última sección de navegación activa). Reemplaza el almacenamiento global
// del navegador por un puerto explícito con get/set.
//
// Get distingue "no fijada" (found=false) de una preferencia fijada con
// valor vacío: la cadena vacía es un valor legítimo.
type PreferenceRepository interface {
	Get(owner, key string) (value string, found bool, err error)
	Set(owner, key, value string) error
}
